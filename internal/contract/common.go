package contract

import "github.com/evanmoss/outlay/internal/app"

type ValidationError = app.ValidationError
