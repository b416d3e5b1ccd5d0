package entities

// WildcardCode matches any room or work code in a mapping rule.
const WildcardCode = "*"

// MappingRule associates a (room, work) pair of a given form type with
// a template task. Rules are loaded fully hydrated: the repository
// assembles the embedded template graph so the generation engine never
// reaches through storage-level references.
//
// Storage model (DynamoDB):
//   - PK: form_type
//   - SK: id
//   - the template task document is embedded in the rule item
type MappingRule struct {
	ID           string        `json:"id"`
	FormType     string        `json:"form_type"`
	RoomCode     string        `json:"room_code"`
	WorkTypeCode string        `json:"work_type_code"`
	WorkCode     string        `json:"work_code"`
	Multiplier   float64       `json:"multiplier"`
	Priority     int           `json:"priority"`
	IsActive     bool          `json:"is_active"`
	Template     *TemplateTask `json:"template_task,omitempty"`
}

// TemplateTask defines one unit of work: its labor hours and the
// materials/equipment it consumes per unit of the expanded quantity.
type TemplateTask struct {
	ID           string              `json:"id"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	BaseQuantity float64             `json:"base_quantity"`
	LaborHours   float64             `json:"labor_hours"`
	WorkTypeID   string              `json:"work_type_id"`
	WorkType     *WorkType           `json:"work_type,omitempty"`
	Materials    []TemplateMaterial  `json:"materials,omitempty"`
	Equipment    []TemplateEquipment `json:"equipment,omitempty"`
}

// TemplateMaterial is a per-unit material consumption line of a
// template task. Quantity is the multiplier applied to the expanded
// task quantity.
type TemplateMaterial struct {
	Quantity float64   `json:"quantity"`
	Material *Material `json:"material,omitempty"`
}

// TemplateEquipment is a per-unit equipment consumption line of a
// template task.
type TemplateEquipment struct {
	Quantity  float64    `json:"quantity"`
	Equipment *Equipment `json:"equipment,omitempty"`
}
