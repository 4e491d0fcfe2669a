package ledger

// FragmentABI exposes the parsed contract ABI to the external test package
var FragmentABI = fragmentABI
