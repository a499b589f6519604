package domain

// LaunchOptions carries the console command flags
type LaunchOptions struct {
	ListDatabases bool // List databases instead of opening a session
}

// Invocation describes one run of an external console
type Invocation struct {
	Family     Family
	Executable string   // Executable name or path
	Args       []string // Arguments, without the executable
	Env        []string // Extra KEY=VALUE pairs added to the inherited environment
	// TempFiles lists the files created for this run; all are removed by Cleanup
	TempFiles []string
	// CredentialFile is the temp file holding the password, if any
	CredentialFile string

	cleanup []func() error
}

// OnCleanup registers a function run by Cleanup, in reverse order
func (i *Invocation) OnCleanup(fn func() error) {
	i.cleanup = append(i.cleanup, fn)
}

// Cleanup releases every resource registered with OnCleanup. It runs all
// functions and returns the first error.
func (i *Invocation) Cleanup() error {
	var first error
	for n := len(i.cleanup) - 1; n >= 0; n-- {
		if err := i.cleanup[n](); err != nil && first == nil {
			first = err
		}
	}
	i.cleanup = nil
	return first
}
