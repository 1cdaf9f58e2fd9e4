// Package mocks provides shared mock implementations for testing.
//
// Mocks come in two flavours, matching how tests use them:
//
//   - TestifyMockTaskStore embeds testify's mock.Mock, for tests that assert
//     on the exact calls made.
//   - MockTaskStore has function fields, for tests that only need to steer
//     return values.
package mocks
