package clf_test

import "fmt"

const exampleWrapper = `<?xml version="1.0" ?>
<ProcessList id="Example Wrapper" compCLFversion="3.0" xmlns="urn:AMPAS:CLF:v3.0">
%s
</ProcessList>
`

// wrapSnippet pastes a process node snippet into a minimal valid ProcessList
// document.
func wrapSnippet(snippet string) string {
	return fmt.Sprintf(exampleWrapper, snippet)
}
