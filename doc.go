// Package imexport is a framework for importing and exporting tabular
// spreadsheet data into and out of typed record objects.
//
// The package contains no cell-level I/O and no transport layer. A concrete
// importer or exporter supplies both; this package supplies the pieces with
// real invariants: the table-manager registry, column/field name mapping,
// and the concurrent progress-and-notification engine.
//
// # Table Managers
//
// Embedders register one [TableManager] per record type. A manager exposes
// the record type's table name and its mappable fields:
//
//	reg := imexport.NewRegistry()
//	contacts, _ := imexport.NewStaticManager("Contact", "firstName", "lastName", "mail")
//	reg.Add(contacts)
//
// Lookups are case-insensitive. The registry must hold at least one manager
// before an [ImExporter] can be constructed.
//
// # Name Mapping
//
// A [NameMapping] is a bidirectional correspondence between spreadsheet
// column names and record field names. It either comes from a JSON mapping
// file ([Mapper.Load]) or is the identity mapping over a manager's fields
// ([IdentityMapping]). [Mapper.GenerateClean] writes a fresh identity
// mapping file for a table so users have a template to edit.
//
// # Progress and Observers
//
// Concrete importers drive the lifecycle hooks ([ImExporter.AddDataSetsToProcess],
// [ImExporter.FinishDataSetProcess], [ImExporter.FinishSubRun], ...) while
// iterating rows. Each mutation recomputes an overall percentage and fans it
// out through the [Hub] to every registered [Observer]. A sub-run is one
// table's full import or export inside a larger multi-table run; the
// percentage is apportioned across unfinished sub-runs so finishing one
// table does not jump ahead of tables not yet started.
//
// Fan-out isolates observer faults: a panicking observer never suppresses
// delivery to the others.
//
// # Errors
//
// Failures carry a [Kind] tag separating caller mistakes
// ([KindInvalidArgument]), configuration defects ([KindInvalidState]),
// recoverable data problems ([KindMalformedMapping]) and internal defects
// ([KindCriticalIO]). Use [IsKind] to branch on them.
package imexport
