package sendgrid

// Address is a sender or recipient.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Personalization names the recipients of one delivery.
type Personalization struct {
	To []Address `json:"to"`
}

// Content is one MIME part of the message body.
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Attachment is a base64-encoded file attached to the message.
type Attachment struct {
	Content     string `json:"content"`
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition"`
}

// mailRequest is the v3 mail/send payload.
type mailRequest struct {
	Personalizations []Personalization `json:"personalizations"`
	From             Address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []Content         `json:"content"`
	Attachments      []Attachment      `json:"attachments,omitempty"`
}
