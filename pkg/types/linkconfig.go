package types

// LinkConfig describes how to compile and link a native module against one
// platform's staged librgb bundle. It is a pure derivation from the staging
// layout, recomputed on every build and never stored, and is the declarative
// contract consumed by build tooling in cgo, environment, or JSON form.
type LinkConfig struct {
	// Platform key this configuration applies to. Exactly one platform's
	// configuration is active per build.
	Platform string `json:"platform"`
	// Directories added to the compiler include search path (-I).
	IncludeDirs []string `json:"include_dirs"`
	// Directories added to the linker library search path (-L).
	LibraryDirs []string `json:"library_dirs"`
	// Link names (-l), without the lib prefix or file extension.
	LibraryNames []string `json:"library_names"`
	// Directories embedded into the built binary as runtime loader search
	// paths (rpath). Always identical to LibraryDirs: the loader must
	// resolve the library from the same directory the linker searched.
	RuntimePaths []string `json:"runtime_paths"`
}
