package model

import (
	"time"

	"github.com/mockbok-dev/mockbok/internal/bas"
)

// Account is one entry in the generated chart of accounts.
type Account struct {
	ID               string
	Number           int // 4-digit BAS account number
	NameSV           string
	NameEN           string
	Class            bas.Class
	ClassDescription string
	ParentID         string // empty = top-level
	Active           bool
	CreatedAt        time.Time
}
