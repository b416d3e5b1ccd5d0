package entities

import "time"

// Form is the intake questionnaire (formularz) filled in for a client
// request. Answers are stored separately and only marked answers take
// part in estimate generation.
//
// Storage model (DynamoDB):
//   - PK: id
type Form struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	CompanyID string    `json:"company_id"`
	FormType  string    `json:"form_type"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FormAnswer is one marked row of a form: a room paired with a work
// code and a quantity.
//
// Storage model (DynamoDB):
//   - PK: form_id
//   - SK: id
type FormAnswer struct {
	ID           string  `json:"id"`
	FormID       string  `json:"form_id"`
	RoomCode     string  `json:"room_code"`
	RoomName     string  `json:"room_name"`
	RoomGroup    string  `json:"room_group"`
	WorkCode     string  `json:"work_code"`
	WorkTypeCode string  `json:"work_type_code"`
	Value        float64 `json:"value"`
	IsMarked     bool    `json:"is_marked"`
}

// EffectiveWorkCode prefers the explicit work code over the work type
// code when both are present.
func (a FormAnswer) EffectiveWorkCode() string {
	if a.WorkCode != "" {
		return a.WorkCode
	}
	return a.WorkTypeCode
}

// DisplayRoomName falls back through room_name, room_group and finally
// the raw room code.
func (a FormAnswer) DisplayRoomName() string {
	if a.RoomName != "" {
		return a.RoomName
	}
	if a.RoomGroup != "" {
		return a.RoomGroup
	}
	return a.RoomCode
}
