package fcmsend

// Result is the outcome of a single delivery attempt. Both client
// packages implement it.
type Result interface {
	Sent() bool
	Status() int
	Body() string
	Provider() string
	RecipientIdentifier() string
}
