package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserInactive = errors.New("user account is inactive")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")

var ErrPatientNotFound = errors.New("patient not found")
var ErrPatientExists = errors.New("patient already exists")
var ErrSedationistNotFound = errors.New("sedationist not found")
var ErrSedationistExists = errors.New("sedationist already exists")
