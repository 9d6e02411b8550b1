package core

import "github.com/google/uuid"

// NewID generates a random (v4) UUID for a new record.
var NewID = uuid.NewString // mockable
