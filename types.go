package goskema4j

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// MaxBytes caps the size of byte and reader sources (0 disables the cap).
	// Exceeding it yields a truncated issue.
	MaxBytes int64
	// FailFast stops rule checks at the first failure.
	FailFast bool
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
