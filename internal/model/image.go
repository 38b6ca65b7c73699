package model

// ImageInput is one egg image submitted for analysis. Data holds the encoded
// bytes that go to the reasoning service; MIMEType describes the encoding.
type ImageInput struct {
	ID       string
	Data     []byte
	MIMEType string
}
