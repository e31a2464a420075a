package models

// Ptr returns a pointer to v. Used for the nullable model flags whose
// false value must stay distinguishable from "not provided".
func Ptr[T any](v T) *T {
	return &v
}
