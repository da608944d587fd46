// Package engine drives the row-by-row validation of a tabular source.
//
// An [Engine] is built once per run from a [Config]: a source handle, a
// mapping of field names to validators, and a report format. Validate opens
// the source, reconciles the declared fields against the actual header,
// streams data rows applying each field's validators in order, and records
// every rejection in a [Ledger]. The verdict is a single boolean; all
// diagnostic detail flows through the [Reporter].
//
//	eng, err := engine.New(engine.Config{
//		Source: source.NewFile("users.csv"),
//		Validators: map[string][]check.Validator{
//			"email": {mustRegex(`.+@.+`)},
//			"id":    {check.NewUnique()},
//		},
//	})
//	if err != nil {
//		return err
//	}
//	if !eng.Validate() {
//		os.Exit(1)
//	}
//
// The engine is single-threaded and a run is not resumable. Validator
// instances accumulate failure counts across their lifetime, so reusing them
// between runs skews reports; construct fresh ones instead.
package engine
