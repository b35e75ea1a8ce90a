package authz

// Actor is the caller of an operation. Role is derived from the external
// authentication mechanism; the rule table only cares whether the caller
// is authenticated staff.
type Actor struct {
	Staff bool
}

var (
	Public = Actor{Staff: false}
	Staff  = Actor{Staff: true}
)

type Kind string

const (
	KindDoctor      Kind = "doctor"
	KindService     Kind = "service"
	KindAppointment Kind = "appointment"
	KindBlogPost    Kind = "blog_post"
	KindTestimonial Kind = "testimonial"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// publicOps is the full rule table for unauthenticated callers. Staff may do
// anything, so only the public side needs spelling out. Appointment is the
// one entity the public may write (booking) and the one it may never read.
var publicOps = map[Kind]map[Operation]bool{
	KindDoctor:      {OpRead: true},
	KindService:     {OpRead: true},
	KindBlogPost:    {OpRead: true},
	KindTestimonial: {OpRead: true},
	KindAppointment: {OpCreate: true},
}

// Allowed reports whether actor may perform op on the given entity kind.
// Evaluated per call; pure, no side effects, no caching.
func Allowed(actor Actor, kind Kind, op Operation) bool {
	if actor.Staff {
		return true
	}
	return publicOps[kind][op]
}

// visibility maps each kind to the column gating anonymous reads. Public
// reads must always conjoin this predicate with any caller-supplied filter.
var visibility = map[Kind]string{
	KindDoctor:      "available",
	KindService:     "active",
	KindBlogPost:    "published",
	KindTestimonial: "active",
}

// VisibilityColumn returns the boolean column that must be true for a row of
// the given kind to be visible to public callers, and false if the kind has
// no public read access at all.
func VisibilityColumn(kind Kind) (string, bool) {
	col, ok := visibility[kind]
	return col, ok
}
