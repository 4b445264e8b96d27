package constvars

const (
	EmailWelcomeSubjectMessage = "[DENTORA] Welcome to Dentora"
)

const (
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailBodyWelcome                 = "Hi %s, your clinic %s has been registered. You can now sign in and invite your staff."
)
