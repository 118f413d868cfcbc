package selection

// Package selection parses user-entered playlist range expressions such as
// "1-20,30-52" into the ascending, de-duplicated list of 1-based item
// indices that should be downloaded.
