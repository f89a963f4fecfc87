package domain

// SlotOrigin records how an answer slot came to exist.
type SlotOrigin string

const (
	// SlotOriginTemplate marks slots created by materialization.
	SlotOriginTemplate SlotOrigin = "TEMPLATE"
	// SlotOriginAttached marks slots added by an explicit attach action.
	SlotOriginAttached SlotOrigin = "ATTACHED"
)

func (o SlotOrigin) String() string { return string(o) }

func (o SlotOrigin) IsValid() bool {
	switch o {
	case SlotOriginTemplate, SlotOriginAttached:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs and errors).
type EntityType string

const (
	EntityTypeQuestion    EntityType = "QUESTION"
	EntityTypeTranslation EntityType = "TRANSLATION"
	EntityTypeTemplate    EntityType = "TEMPLATE"
	EntityTypeCollection  EntityType = "COLLECTION"
	EntityTypeSlot        EntityType = "SLOT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeQuestion, EntityTypeTranslation, EntityTypeTemplate,
		EntityTypeCollection, EntityTypeSlot:
		return true
	}
	return false
}

// AuditAction identifies the mutation recorded in an audit log entry.
type AuditAction string

const (
	AuditActionCreate      AuditAction = "CREATE"
	AuditActionUpdate      AuditAction = "UPDATE"
	AuditActionDelete      AuditAction = "DELETE"
	AuditActionMaterialize AuditAction = "MATERIALIZE"
	AuditActionAnswer      AuditAction = "ANSWER"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionMaterialize, AuditActionAnswer:
		return true
	}
	return false
}
