package model

const (
	EngineTranscribe        = "transcribe"
	EngineTranscribeMedical = "transcribe_medical"

	MedicalSpecialtyPrimaryCare = "PRIMARYCARE"
	MedicalTypeConversation     = "CONVERSATION"
)

// TranscriptionStreamParams is the JSON object passed by the client in the
// transcriptionStreamParams query parameter.
type TranscriptionStreamParams struct {
	ContentIdentificationType     *string `json:"contentIdentificationType,omitempty"`
	ContentRedactionType          *string `json:"contentRedactionType,omitempty"`
	EnablePartialResultsStability *bool   `json:"enablePartialResultsStability,omitempty"`
	PartialResultsStability       *string `json:"partialResultsStability,omitempty"`
	PiiEntityTypes                *string `json:"piiEntityTypes,omitempty"`
	LanguageModelName             *string `json:"languageModelName,omitempty"`
	IdentifyLanguage              *bool   `json:"identifyLanguage,omitempty"`
	LanguageOptions               *string `json:"languageOptions,omitempty"`
	PreferredLanguage             *string `json:"preferredLanguage,omitempty"`
	VocabularyNames               *string `json:"vocabularyNames,omitempty"`
	VocabularyFilterNames         *string `json:"vocabularyFilterNames,omitempty"`
}

// TranscriptionConfig carries exactly one of the engine settings.
type TranscriptionConfig struct {
	Transcribe        *TranscribeSettings
	TranscribeMedical *TranscribeMedicalSettings
}

type TranscribeSettings struct {
	LanguageCode                      string
	Region                            string
	ContentIdentificationType         string
	ContentRedactionType              string
	EnablePartialResultsStabilization *bool
	PartialResultsStability           string
	PiiEntityTypes                    string
	LanguageModelName                 string
	IdentifyLanguage                  *bool
	LanguageOptions                   string
	PreferredLanguage                 string
	VocabularyNames                   string
	VocabularyFilterNames             string
}

type TranscribeMedicalSettings struct {
	LanguageCode              string
	Specialty                 string
	Type                      string
	Region                    string
	ContentIdentificationType string
}

// Credentials is the shape returned by GET /fetch_credentials.
type Credentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken,omitempty"`
	Expiration      string `json:"expiration,omitempty"`
}
