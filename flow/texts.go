package flow

import "github.com/fwojciec/donate"

// Texts holds the participant-facing texts of the dialogue.
type Texts struct {
	File               donate.Translatable
	Retry              donate.Translatable
	RetryOK            donate.Translatable
	RetryCancel        donate.Translatable
	ConsentDescription donate.Translatable
	ConsentQuestion    donate.Translatable
	ConsentButton      donate.Translatable
}

// DefaultTexts returns the English and Dutch texts.
func DefaultTexts() Texts {
	return Texts{
		File: donate.Translatable{
			"en": "Please follow the download instructions and choose the file that you stored on your device. Click “Skip” at the right bottom, if you do not have a file.",
			"nl": "Volg de download instructies en kies het bestand dat u opgeslagen heeft op uw apparaat. Als u geen bestand heeft klik dan op “Overslaan” rechts onder.",
		},
		Retry: donate.Translatable{
			"en": "Unfortunately, we cannot process your file. Continue, if you are sure that you selected the right file. Try again to select a different file.",
			"nl": "Helaas, kunnen we uw bestand niet verwerken. Weet u zeker dat u het juiste bestand heeft gekozen? Ga dan verder. Probeer opnieuw als u een ander bestand wilt kiezen.",
		},
		RetryOK:     donate.Translatable{"en": "Try again", "nl": "Probeer opnieuw"},
		RetryCancel: donate.Translatable{"en": "Continue", "nl": "Verder"},
		ConsentDescription: donate.Translatable{
			"en": "Below you will find meta data about the contents of the zip file you submitted. Please review the data carefully and remove any information you do not wish to share. If you would like to share this data, click on the 'Yes, share for research' button at the bottom of this page.",
			"nl": "Hieronder ziet u gegevens over de zip die u heeft ingediend. Bekijk de gegevens zorgvuldig, en verwijder de gegevens die u niet wilt delen. Als u deze gegevens wilt delen, klik dan op de knop 'Ja, deel voor onderzoek' onderaan deze pagina.",
		},
		ConsentQuestion: donate.Translatable{
			"en": "Do you want to share this data for research?",
			"nl": "Wilt u deze gegevens delen voor onderzoek?",
		},
		ConsentButton: donate.Translatable{
			"en": "Yes, share for research",
			"nl": "Ja, deel voor onderzoek",
		},
	}
}
