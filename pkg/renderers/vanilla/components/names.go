package components

// Canonical component names used by the vanilla renderer and the default
// registry. Theme partial keys use the same names prefixed with "uikit.".
const (
	NameDatePicker      = "datepicker"
	NameDatePickerBody  = "datepicker-body"
	NameModal           = "modal"
	NameToast           = "toast"
	NameToastContainer  = "toast-container"
	NameFeatureCard     = "feature-card"
	NamePricingCard     = "pricing-card"
	NameTestimonialCard = "testimonial-card"
	NameInput           = "input"
	NameTextarea        = "textarea"
	NameSelect          = "select"
	NameContactForm     = "contact-form"
	NameAssets          = "assets"
)
