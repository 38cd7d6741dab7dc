package models

// Course registration statuses.
const (
	RegistrationPending  = "pending"
	RegistrationPaid     = "paid"
	RegistrationRejected = "rejected"
)

// RegistrationStatuses lists every accepted status value.
var RegistrationStatuses = []string{RegistrationPending, RegistrationPaid, RegistrationRejected}

// CourseRegistrationModel links a user to a course they signed up for.
// The (course, user) pair is unique: one registration per user per course.
type CourseRegistrationModel struct {
	Base
	CourseID string `json:"courseId" gorm:"uniqueIndex:idx_course_user;not null"`
	UserID   string `json:"userId"   gorm:"uniqueIndex:idx_course_user;not null"`
	Status   string `json:"status"   gorm:"default:pending"`
	Notes    string `json:"notes"`

	Course *CourseModel `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	User   *UserModel   `json:"user,omitempty"   gorm:"foreignKey:UserID"`
}

func (CourseRegistrationModel) TableName() string { return "course_registrations" }
