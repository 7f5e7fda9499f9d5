package dto

type CounselChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`

	// Optional explicit window; defaults to the trailing 7 days.
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" validate:"omitempty,datetime=2006-01-02"`

	// IncludeMedication opts the adherence fields into the digest for this
	// request, on top of the account-level feature flag.
	IncludeMedication bool `json:"include_medication"`
}

type CounselChatResponse struct {
	Reply      string `json:"reply"`
	DigestDays int    `json:"digest_days"`
}
