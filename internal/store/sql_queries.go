// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package store

const (
	attemptsTable         = "queued_attempts"
	audioTable            = "queued_audio"
	srsUpdatesTable       = "queued_srs_updates"
	starTransactionsTable = "queued_star_transactions"
)

const (
	insertAttempt = `
		INSERT INTO queued_attempts (
			child_id,
			word_id,
			list_id,
			mode,
			correct,
			typed_answer,
			audio_ref,
			started_at,
			sync_state,
			retry_count,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectAttemptColumns = `
		SELECT
			id,
			child_id,
			word_id,
			list_id,
			mode,
			correct,
			typed_answer,
			audio_ref,
			started_at,
			sync_state,
			retry_count,
			last_error
		FROM queued_attempts`

	getAttempt = selectAttemptColumns + `
		WHERE id = ?;`

	listAttemptsByState = selectAttemptColumns + `
		WHERE sync_state = ?
		ORDER BY id ASC;`

	countAttemptsByState = `
		SELECT COUNT(*) FROM queued_attempts WHERE sync_state = ?;`

	deleteAttemptsByState = `
		DELETE FROM queued_attempts WHERE sync_state = ?;`
)

const (
	insertAudio = `
		INSERT INTO queued_audio (
			data,
			filename,
			storage_ref,
			created_at,
			sync_state,
			retry_count,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	selectAudioColumns = `
		SELECT
			id,
			data,
			filename,
			storage_ref,
			created_at,
			sync_state,
			retry_count,
			last_error
		FROM queued_audio`

	getAudio = selectAudioColumns + `
		WHERE id = ?;`

	listAudioByState = selectAudioColumns + `
		WHERE sync_state = ?
		ORDER BY id ASC;`

	countAudioByState = `
		SELECT COUNT(*) FROM queued_audio WHERE sync_state = ?;`

	deleteAudioByState = `
		DELETE FROM queued_audio WHERE sync_state = ?;`
)

const (
	insertSrsUpdate = `
		INSERT INTO queued_srs_updates (
			child_id,
			word_id,
			was_correct_first_try,
			created_at,
			sync_state,
			retry_count,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	selectSrsUpdateColumns = `
		SELECT
			id,
			child_id,
			word_id,
			was_correct_first_try,
			created_at,
			sync_state,
			retry_count,
			last_error
		FROM queued_srs_updates`

	getSrsUpdate = selectSrsUpdateColumns + `
		WHERE id = ?;`

	listSrsUpdatesByState = selectSrsUpdateColumns + `
		WHERE sync_state = ?
		ORDER BY id ASC;`

	countSrsUpdatesByState = `
		SELECT COUNT(*) FROM queued_srs_updates WHERE sync_state = ?;`

	deleteSrsUpdatesByState = `
		DELETE FROM queued_srs_updates WHERE sync_state = ?;`
)

const (
	insertStarTransaction = `
		INSERT INTO queued_star_transactions (
			user_id,
			amount,
			reason,
			created_at,
			sync_state,
			retry_count,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	selectStarTransactionColumns = `
		SELECT
			id,
			user_id,
			amount,
			reason,
			created_at,
			sync_state,
			retry_count,
			last_error
		FROM queued_star_transactions`

	getStarTransaction = selectStarTransactionColumns + `
		WHERE id = ?;`

	listStarTransactionsByState = selectStarTransactionColumns + `
		WHERE sync_state = ?
		ORDER BY id ASC;`

	countStarTransactionsByState = `
		SELECT COUNT(*) FROM queued_star_transactions WHERE sync_state = ?;`

	deleteStarTransactionsByState = `
		DELETE FROM queued_star_transactions WHERE sync_state = ?;`
)
