package crt

// SeparateChaining - Collision resolution technique where every bucket holds a single linked chain of records
const SeparateChaining int = 1
