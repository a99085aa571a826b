package overlap

// Agrees exposes the overlap test used to build the compatibility table.
var Agrees = agrees

// PatternHash exposes the positional pattern hash.
var PatternHash = patternHash
