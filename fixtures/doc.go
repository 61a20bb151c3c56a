// Package fixtures loads the people and cars datasets.
//
// Both datasets are bundled with the binary. Either can be replaced by a
// file on disk; the file must hold a JSON array of records in the same shape.
// Every record must carry all of its numeric fields and is validated. The
// first invalid one aborts loading with an INVALID_FIXTURE error naming the
// file, the record index and the fields.
package fixtures
