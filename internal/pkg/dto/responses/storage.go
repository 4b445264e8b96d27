package responses

type PatientDocument struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
}
