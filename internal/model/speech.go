package model

// Speech DTOs. The speech endpoints are gated by the user's
// tts_stt_mode_enabled flag and degrade to 503 when no backend is configured.

type SynthesizeRequest struct {
	Text     string `json:"text" validate:"required,max=2000"`
	Language string `json:"language,omitempty" validate:"omitempty,max=10"`
}

type SynthesizeResponse struct {
	AudioURL string `json:"audioUrl"`
}

type TranscribeRequest struct {
	AudioURL string `json:"audioUrl" validate:"required,max=500"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

type SpeechStatusResponse struct {
	Enabled bool `json:"enabled"`
}
