package constant

import "time"

const (
	// Simulated latencies. Relative cadence matters (short pause after user
	// turns, longer "typing" pause before agent turns); exact values do not.
	ReplyLatency    = 1 * time.Second
	UserTurnDelay   = 500 * time.Millisecond
	AgentTurnDelay  = 1 * time.Second
	UploadStepDelay = 200 * time.Millisecond

	// Upload progress advances in fixed increments until 100.
	UploadProgressStep = 20

	// Preference keys.
	PrefHideWelcomeModal = "hide_welcome_modal"
	PrefDefaultPersona   = "default_persona"

	// Event bus topic for live session events.
	ChatEventsTopic = "CHAT_SESSION_EVENTS"
)

// Live session event types pushed to the websocket stream.
const (
	EventTyping             = "typing"
	EventMessageAppended    = "message_appended"
	EventAttachmentProgress = "attachment_progress"
	EventPlaybackFinished   = "playback_finished"
	EventSessionReset       = "session_reset"
	EventConversationSaved  = "conversation_saved"
	EventConversationLoaded = "conversation_loaded"
	EventConversationDelete = "conversation_deleted"
)
