// SPDX-License-Identifier: MPL-2.0

// Package genesys is a small client for the Genesys Cloud platform API.
//
// It covers exactly what lookup needs: an OAuth client-credentials token,
// users and queues by id or by name, and conversations by id. Hosts are
// derived from the region ("usw2.pure.cloud" becomes login.usw2.pure.cloud
// and api.usw2.pure.cloud) and can be overridden for test servers. There is
// no retry, pagination, token refresh or rate-limit handling.
package genesys
