package prompt

// GetSystemPrompt establishes the forensics analyst persona.
func GetSystemPrompt() string {
	return "You are an expert image forensics analyst. Analyze images to determine if they are fake (AI-generated, manipulated, deepfake) or real (authentic photograph). Provide a confidence score between 0-100 and detailed reasoning."
}

// GetTaskPrompt defines the FAKE/REAL categories and mandates the
// three-line reply format the extractor parses.
func GetTaskPrompt() string {
	return `Analyze this image and determine if it is FAKE or REAL.

FAKE includes:
- AI-generated images
- Deepfakes
- Heavily manipulated/photoshopped images
- Synthetic images

REAL includes:
- Authentic photographs
- Unaltered or minimally edited photos
- Natural camera captures

Provide your response in this exact format:
VERDICT: [FAKE or REAL]
CONFIDENCE: [0-100]
REASONING: [Brief explanation of why you made this determination]`
}
