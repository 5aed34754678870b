package responder

// oracleFallbackMarker appears in the oracle's own canned "I have nothing"
// replies; such output is treated as a deferral, not an answer.
const oracleFallbackMarker = "I'm here to listen"

const crisisMessage = `**CRISIS ALERT - IMMEDIATE HELP NEEDED**

I'm very concerned about what you're saying. Your life is precious and people care about you.

**EMERGENCY CONTACTS - CALL NOW:**
- Vandrevala Foundation: +91-9999666555 (24/7)
- AASRA: +91-9820466726 (24/7)
- iCall: +91-9152987821 (Mon-Sat 10AM-8PM)
- Emergency Services: 112 / 911

**You don't have to go through this alone. Please reach out NOW.**`

const concernMessage = `**I'm concerned about you**

I hear that you're having very difficult thoughts. These feelings are temporary, even if they don't feel that way right now.

**Please consider:**
- Speaking with a trusted friend or family member
- Calling a helpline: +91-9999666555
- Remembering that many people care about you

Would you like to talk about what's making you feel this way?`

const fallbackMessage = "I'm here to listen and support you. Tell me more about what's on your mind today."

type cbtTechnique struct {
	name     string
	response string
	exercise string
}

// One scripted technique per emotion; stress and fear intentionally have
// none and fall through to the later stages.
var cbtTechniques = map[string]cbtTechnique{
	"sadness": {
		name:     "Behavioral Activation",
		response: "When we feel sad, our activities decrease, which can deepen the sadness. Let's plan one small, enjoyable activity for today, even if you don't feel like it.",
		exercise: "What's one activity you used to enjoy? Let's schedule it for 15 minutes today.",
	},
	"anxiety": {
		name:     "Cognitive Restructuring",
		response: "Anxiety often comes from overestimating danger. Let's examine the evidence - what's the realistic worst-case scenario?",
		exercise: "Write down your anxious thought and list evidence for and against it.",
	},
	"anger": {
		name:     "Anger Management",
		response: "Anger signals that something matters to us. Let's explore the underlying need behind this anger.",
		exercise: "What need isn't being met? How can we address it constructively?",
	},
	"hopelessness": {
		name:     "Hope Building",
		response: "Hopelessness makes us see only negatives. Let's look for small signs of possibility, even tiny ones.",
		exercise: "Can you recall one small thing that went slightly better than expected recently?",
	},
	"loneliness": {
		name:     "Connection Building",
		response: "Loneliness can make us withdraw. Let's explore small ways to connect, even if it feels difficult.",
		exercise: "Who is one person you could send a simple message to today?",
	},
}

var responseTemplates = map[string][]string{
	"greeting": {
		"Hello! I'm Soul Connect. Thank you for reaching out. How are you feeling today?",
		"Hi there! I'm here to listen and support you. What's on your mind?",
		"Welcome! I'm Soul Connect, your mental health companion. How can I help you today?",
	},
	"sadness": {
		"I hear the sadness in your words. It takes courage to share these feelings. Would you like to talk more about what's making you feel this way?",
		"I'm here with you in this sadness. Sometimes just expressing these feelings can bring some relief. What's weighing on your heart today?",
	},
	"anxiety": {
		"I sense the anxiety in your message. Let's breathe together for a moment. Inhale slowly... exhale slowly... What's causing these anxious feelings?",
		"Anxiety can feel overwhelming. You're not alone in this. Let's break it down - what specific worry is on your mind right now?",
	},
	"anger": {
		"I notice the anger in your words. Anger often signals that something important matters to you. What's been frustrating you?",
		"I hear the frustration. It's okay to feel angry. Let's explore what's behind these feelings together.",
	},
	"loneliness": {
		"Loneliness can feel really isolating. I'm here with you right now. What does connection mean to you?",
		"I hear you're feeling lonely. That must be really difficult. Remember that you're not alone in this.",
	},
	"stress": {
		"Stress can feel overwhelming. Let's prioritize together - what's feeling most pressing right now?",
		"I sense you're feeling stressed. That's completely valid. What's one thing we could do to reduce the pressure?",
	},
}
