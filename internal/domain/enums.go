package domain

// ActivityLevel represents how active a cat is, used for display and
// daily-target hints only.
type ActivityLevel string

const (
	ActivityLevelLow    ActivityLevel = "LOW"
	ActivityLevelNormal ActivityLevel = "NORMAL"
	ActivityLevelHigh   ActivityLevel = "HIGH"
)

func (a ActivityLevel) String() string { return string(a) }

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivityLevelLow, ActivityLevelNormal, ActivityLevelHigh:
		return true
	}
	return false
}

// FoodType represents the physical form of a pet food product.
type FoodType string

const (
	FoodTypeDry   FoodType = "DRY"
	FoodTypeWet   FoodType = "WET"
	FoodTypePouch FoodType = "POUCH"
	FoodTypeRaw   FoodType = "RAW"
	FoodTypeTreat FoodType = "TREAT"
	FoodTypeOther FoodType = "OTHER"
)

func (f FoodType) String() string { return string(f) }

func (f FoodType) IsValid() bool {
	switch f {
	case FoodTypeDry, FoodTypeWet, FoodTypePouch, FoodTypeRaw, FoodTypeTreat, FoodTypeOther:
		return true
	}
	return false
}

// TargetAge represents the life stage a food product is formulated for.
type TargetAge string

const (
	TargetAgeKitten TargetAge = "KITTEN"
	TargetAgeAdult  TargetAge = "ADULT"
	TargetAgeSenior TargetAge = "SENIOR"
	TargetAgeAll    TargetAge = "ALL"
)

func (t TargetAge) String() string { return string(t) }

func (t TargetAge) IsValid() bool {
	switch t {
	case TargetAgeKitten, TargetAgeAdult, TargetAgeSenior, TargetAgeAll:
		return true
	}
	return false
}

// CareRecordType distinguishes supplement entries from medication entries
// in the daily care diary.
type CareRecordType string

const (
	CareRecordSupplement CareRecordType = "SUPPLEMENT"
	CareRecordMedication CareRecordType = "MEDICATION"
)

func (t CareRecordType) String() string { return string(t) }

func (t CareRecordType) IsValid() bool {
	switch t {
	case CareRecordSupplement, CareRecordMedication:
		return true
	}
	return false
}

// EntityType names the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeUser        EntityType = "USER"
	EntityTypeCat         EntityType = "CAT"
	EntityTypeFoodProduct EntityType = "FOOD_PRODUCT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeCat, EntityTypeFoodProduct:
		return true
	}
	return false
}

// AuditAction is the kind of change an audit record captures.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
