package bernconst

//go:generate go run ../../cmd/gentable -max 4096
