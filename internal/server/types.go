package server

import (
	"github.com/scoutclear/scout/internal/brand"
	"github.com/scoutclear/scout/internal/mail"
)

// Deps are the collaborators the server does not build itself
type Deps struct {
	Sender mail.Sender
	Brand  brand.Brand
}
