package repository

// LoadPeopleOptions holds the parameters for loading a roster.
type LoadPeopleOptions struct {
	Path   string // Roster file; the format follows the extension (.json, .yaml/.yml, .vcf)
	Format string // Optional explicit format overriding the extension
}
