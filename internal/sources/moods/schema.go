package moods

// File is the root structure of the moods YAML file.
//
//	moods:
//	  - happy
//	  - chill
//	  - rainy sunday
type File struct {
	Moods []string `yaml:"moods"`
}
