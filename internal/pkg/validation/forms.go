package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// FieldErrors maps a form field to its first error message.
type FieldErrors map[string]string

// Add records msg for field unless the field already has an error.
func (f FieldErrors) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// Valid reports whether no field failed.
func (f FieldErrors) Valid() bool {
	return len(f) == 0
}

// Fields returns the failing field names in sorted order.
func (f FieldErrors) Fields() []string {
	out := make([]string, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Err converts the field errors into a validation error, or nil when valid.
// A single failing field becomes the error message itself.
func (f FieldErrors) Err() error {
	switch len(f) {
	case 0:
		return nil
	case 1:
		return apperrors.NewValidationError(f[f.Fields()[0]], f)
	}
	return apperrors.NewValidationError("Please correct the highlighted fields", f)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkEmail(errs FieldErrors, email string) {
	switch {
	case blank(email):
		errs.Add("email", "Email is required")
	case !IsEmail(email):
		errs.Add("email", "Please enter a valid email address")
	}
}

func checkName(errs FieldErrors, field, label, value string) {
	switch nameRule.Check(value) {
	case TextMissing:
		errs.Add(field, label+" is required")
	case TextTooLong:
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", label, NameMaxLength))
	}
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	checkEmail(errs, email)
	if blank(password) {
		errs.Add("password", "Password is required")
	}
	return errs
}

// ValidateRegistration checks the registration form, including the attributes each role requires.
func ValidateRegistration(d models.ProfileDraft, password, confirmPassword string) FieldErrors {
	errs := FieldErrors{}
	checkName(errs, "firstName", "First name", d.FirstName)
	checkName(errs, "lastName", "Last name", d.LastName)
	checkEmail(errs, d.Email)
	if msg := PasswordProblem(password); msg != "" {
		errs.Add("password", msg)
	}
	if password != confirmPassword {
		errs.Add("confirmPassword", "Passwords do not match")
	}
	switch d.Role {
	case models.RoleAlumni:
		if d.GraduationYear == nil {
			errs.Add("graduationYear", "Graduation year is required for alumni")
		}
		if blank(d.Course) {
			errs.Add("course", "Course is required")
		}
	case models.RoleStudent:
		if d.CurrentYear == nil {
			errs.Add("currentYear", "Current year is required for students")
		}
		if blank(d.Course) {
			errs.Add("course", "Course is required")
		}
	case models.RoleAdmin:
	default:
		errs.Add("role", "Please select a role")
	}
	return errs
}

// ValidateProfile checks a profile update.
func ValidateProfile(p models.UserPatch) FieldErrors {
	errs := FieldErrors{}
	if p.FirstName != nil {
		checkName(errs, "firstName", "First name", *p.FirstName)
	}
	if p.LastName != nil {
		checkName(errs, "lastName", "Last name", *p.LastName)
	}
	if p.LinkedIn != nil && linkedInRule.Check(*p.LinkedIn) != TextOK {
		errs.Add("linkedIn", "LinkedIn username may only contain letters, digits, dashes and underscores")
	}
	return errs
}

// ValidateMentorshipDraft checks a new mentorship request.
func ValidateMentorshipDraft(d models.MentorshipDraft) FieldErrors {
	errs := FieldErrors{}
	if blank(d.Subject) {
		errs.Add("subject", "Subject is required")
	}
	if blank(d.Message) {
		errs.Add("message", "Message is required")
	}
	return errs
}

// ValidateDonationDraft checks a new donation.
func ValidateDonationDraft(d models.DonationDraft) FieldErrors {
	errs := FieldErrors{}
	if d.Amount <= 0 {
		errs.Add("amount", "Please enter a valid amount")
	}
	if blank(d.Purpose) {
		errs.Add("purpose", "Please select a purpose")
	}
	if d.IsRecurring && !d.Frequency.Valid() {
		errs.Add("frequency", "Please select a frequency")
	}
	return errs
}
