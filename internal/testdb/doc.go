// Package testdb provides helpers for database integration tests.
//
// Each test runs inside a transaction that is rolled back when the test
// completes, so tests do not see each other's rows:
//
//	func TestBranchStore(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.SetupSchema(t, db, postgres.BranchesMigrations)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        branchStore := postgres.NewPostgresBranchStore(tx, nil)
//	        // ...
//	    })
//	}
//
// Tests are skipped when neither DATABASE_URL nor BANQUITO_TEST_DB_URL is set.
package testdb
