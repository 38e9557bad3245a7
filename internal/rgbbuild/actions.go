package rgbbuild

// Indirection layer to allow stubbing in tests.
var (
	fnProvision = runProvision
	fnResolve   = runResolve
	fnCheck     = runCheck
	fnPlatforms = runPlatforms
)
