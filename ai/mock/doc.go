// Package mock provides test doubles for the ai package interfaces.
//
// The mocks allow behavior injection through function fields and record
// call counts so tests can assert, for example, that the analyzer was
// never invoked when the corpus came up empty.
//
//	provider := mock.NewMockProvider().(*mock.MockProvider)
//	provider.GetMockAnalyzer().AnalyzeFunc = func(ctx context.Context, text string) (json.RawMessage, error) {
//	    return json.RawMessage(`{"category":"task"}`), nil
//	}
package mock
