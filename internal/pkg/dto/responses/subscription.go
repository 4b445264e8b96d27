package responses

type SubscriptionStatus struct {
	Status           string `json:"status"`
	CurrentPeriodEnd string `json:"current_period_end,omitempty"`
	Provider         string `json:"provider"`
}
