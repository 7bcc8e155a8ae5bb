package owner

// Fixture is the static owner set served by the directory. It is loaded once
// at startup and never changes while the process runs.
var Fixture = []Owner{
	{ID: 1, Name: "Alice"},
}
