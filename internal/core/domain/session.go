package domain

import "errors"

// RoleAdmin is the only elevated role: the password gate unlocks it.
const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")
