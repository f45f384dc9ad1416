package models

import "io"

// Upload is a file received from a client, before it is stored.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
