// SPDX-License-Identifier: MPL-2.0

// Package config loads the Genesys Cloud credentials used by lookup.
//
// Credentials live in a dotenv file at ~/.gclookup/.env holding CLIENT_ID,
// CLIENT_SECRET and GENESYS_CLOUD_REGION. The file is read with Viper's "env"
// codec; process environment variables with the same names take precedence
// over the file. The directory is kept at mode 0700 and the file at 0600.
//
// Setup writes a fresh file from prompted answers. The prompting itself is
// abstracted behind Prompter so the command layer can plug in huh forms.
package config
