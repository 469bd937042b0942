// Package student contains the student domain model for EduLog.
//
// The package defines:
//
//   - Value objects: Name, Phone, Email, Address, Fee, Tag — each wraps a
//     single validated scalar. Construction through NewX is the only way to
//     obtain an instance, so a value object in hand is always valid.
//   - TagSet: a unique, unordered tag collection with read-only views.
//   - Student: the aggregate entity, built from validated value objects.
//
// Each value object owns its validity predicate (IsValid) and a constraint
// message constant (e.g. NameConstraints) surfaced to the user verbatim when
// parsing fails. The parsing layer in internal/logic/parser centralizes the
// raw-string-to-value-object conversion; entity and value object
// constructors trust their inputs' shape only as far as their own predicate
// guarantees.
//
// Students carry two notions of equality. IsSameStudent compares names only
// and detects "the same real-world student" even when contact details have
// changed; Equal compares every field. The containing roster uses the weak
// form for duplicate detection.
package student
