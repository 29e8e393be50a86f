package request

type AnalyzeEmotionRequest struct {
	Text string `json:"text" validate:"required,max=20000"`
}

func (r *AnalyzeEmotionRequest) Validate() error {
	return validateStruct(r)
}
