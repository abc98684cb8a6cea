package domain

// CampaignAnalytics holds aggregate counts for a campaign plus derived rates.
// Derived by aggregate query, never stored.
//
// Every rate is numerator/TotalSent. When TotalSent is zero all rates are
// zero; we never emit NaN or null rates. The same policy applies to social
// post analytics.
type CampaignAnalytics struct {
	CampaignID        string  `json:"campaign_id"`
	TotalSent         int     `json:"total_sent"`
	TotalOpened       int     `json:"total_opened"`
	TotalClicked      int     `json:"total_clicked"`
	TotalConverted    int     `json:"total_converted"`
	TotalUnsubscribed int     `json:"total_unsubscribed"`
	TotalRevenue      float64 `json:"total_revenue"`

	OpenRate            float64 `json:"open_rate"`
	ClickRate           float64 `json:"click_rate"`
	ConversionRate      float64 `json:"conversion_rate"`
	UnsubscribeRate     float64 `json:"unsubscribe_rate"`
	RevenuePerRecipient float64 `json:"revenue_per_recipient"`
}

// ComputeRates fills the derived rate fields from the raw counts.
func (a *CampaignAnalytics) ComputeRates() {
	if a.TotalSent == 0 {
		a.OpenRate = 0
		a.ClickRate = 0
		a.ConversionRate = 0
		a.UnsubscribeRate = 0
		a.RevenuePerRecipient = 0
		return
	}
	n := float64(a.TotalSent)
	a.OpenRate = float64(a.TotalOpened) / n
	a.ClickRate = float64(a.TotalClicked) / n
	a.ConversionRate = float64(a.TotalConverted) / n
	a.UnsubscribeRate = float64(a.TotalUnsubscribed) / n
	a.RevenuePerRecipient = a.TotalRevenue / n
}

// SendOutcome summarizes a campaign fan-out: every recipient is attempted
// exactly once, and Attempted == Succeeded + Failed. Callers needing
// per-recipient detail read the analytics events instead.
type SendOutcome struct {
	CampaignID string `json:"campaign_id"`
	Attempted  int    `json:"attempted"`
	Succeeded  int    `json:"succeeded"`
	Failed     int    `json:"failed"`
}
