// internal/model/action.go
package model

// Action is a requested campaign status transition.
type Action string

const (
    ActionPause  Action = "pause"
    ActionResume Action = "resume"
    ActionLaunch Action = "launch"
    ActionBuild  Action = "build"
)

// Transition returns the status a campaign moves to when the action is applied
// in the given status. ok is false when the action is not allowed from that status.
func (a Action) Transition(from Status) (to Status, ok bool) {
    switch a {
    case ActionPause:
        if from == StatusInProgress {
            return StatusPaused, true
        }
    case ActionResume:
        if from == StatusOnHold || from == StatusPaused {
            return StatusInProgress, true
        }
    case ActionLaunch:
        if from == StatusDraft {
            return StatusInProgress, true
        }
    case ActionBuild:
        if from == StatusIdeas {
            return StatusDraft, true
        }
    }
    return "", false
}

func (a Action) Valid() bool {
    switch a {
    case ActionPause, ActionResume, ActionLaunch, ActionBuild:
        return true
    }
    return false
}

// ActionRequest is the payload published on the campaign_actions topic.
type ActionRequest struct {
    RequestID  string `json:"request_id"`
    CampaignID string `json:"campaign_id"`
    Action     Action `json:"action"`
    FromStatus Status `json:"from_status"`
}
