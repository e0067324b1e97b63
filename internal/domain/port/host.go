package port

// HostApplication is the contract the embedding web server provides: a
// one-shot readiness signal and, once it has fired, the set of addresses
// the server is bound to.
type HostApplication interface {
	// Started returns a channel that is closed once the host server is
	// ready to accept connections. It fires at most once.
	Started() <-chan struct{}

	// Addresses returns the URLs the host server is bound to. Only
	// defined after Started has fired.
	Addresses() []string
}
