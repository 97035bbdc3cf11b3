package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Product queries.
const (
	queryUpsertProduct = `
		INSERT INTO products (
			id, provider_id, name, category, price, currency,
			image_url, available, created_at, updated_at
		) VALUES (
			@id, @provider_id, @name, @category, @price, @currency,
			@image_url, @available, now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			provider_id = EXCLUDED.provider_id,
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			image_url = EXCLUDED.image_url,
			available = EXCLUDED.available,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetProduct = `
		SELECT id, provider_id, name, COALESCE(category, ''), price, currency,
			COALESCE(image_url, ''), available, created_at, updated_at
		FROM products
		WHERE id = $1`

	queryListProductsByProvider = `
		SELECT id, provider_id, name, COALESCE(category, ''), price, currency,
			COALESCE(image_url, ''), available, created_at, updated_at
		FROM products
		WHERE provider_id = $1
		ORDER BY created_at DESC`

	queryListProductsChangedSince = `
		SELECT id, provider_id, name, COALESCE(category, ''), price, currency,
			COALESCE(image_url, ''), available, created_at, updated_at
		FROM products
		WHERE (updated_at, id) > ($1, $2)
		ORDER BY updated_at ASC, id ASC
		LIMIT $3`
)

// Provider queries.
const (
	queryUpsertProvider = `
		INSERT INTO providers (
			id, name, city, email, created_at, updated_at
		) VALUES (
			@id, @name, @city, @email, now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			email = EXCLUDED.email,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetProvider = `
		SELECT id, name, COALESCE(city, ''), COALESCE(email, ''), created_at, updated_at
		FROM providers
		WHERE id = $1`
)

// Favorite queries.
const (
	queryDeleteFavorite = `
		DELETE FROM favorites
		WHERE user_id = $1 AND kind = $2 AND entity_id = $3`

	queryInsertFavorite = `
		INSERT INTO favorites (user_id, kind, entity_id, added_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, kind, entity_id) DO NOTHING`

	queryListFavorites = `
		SELECT user_id, entity_id, kind, added_at
		FROM favorites
		WHERE user_id = $1 AND kind = $2
		ORDER BY added_at ASC`
)

// Snapshot queries.
const (
	queryListSnapshots = `
		SELECT user_id, entity_id, provider_id, price, observed_at
		FROM snapshots
		WHERE user_id = $1`

	queryUpsertSnapshot = `
		INSERT INTO snapshots (user_id, entity_id, provider_id, price, observed_at)
		VALUES (@user_id, @entity_id, @provider_id, @price, @observed_at)
		ON CONFLICT (user_id, entity_id) DO UPDATE SET
			provider_id = EXCLUDED.provider_id,
			price = EXCLUDED.price,
			observed_at = EXCLUDED.observed_at`

	queryPruneSnapshots = `
		DELETE FROM snapshots
		WHERE user_id = $1 AND NOT (entity_id = ANY($2))`

	queryPruneAllSnapshots = `
		DELETE FROM snapshots
		WHERE user_id = $1`
)

// Notification queries.
const (
	queryCreateNotification = `
		INSERT INTO notifications (
			user_id, title, message, related_entity_id, dedup_key, read, created_at
		) VALUES (
			$1, $2, $3, $4, $5, false, now()
		)
		ON CONFLICT (user_id, dedup_key) DO NOTHING
		RETURNING id, created_at`

	queryListNotifications = `
		SELECT id, user_id, title, message, related_entity_id, dedup_key, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryMarkAllNotificationsRead = `
		UPDATE notifications SET read = true
		WHERE user_id = $1 AND read = false`

	queryDeleteAllNotifications = `
		DELETE FROM notifications
		WHERE user_id = $1`

	queryDeleteOldNotifications = `
		DELETE FROM notifications
		WHERE created_at < $1`

	queryCountUnreadNotifications = `
		SELECT COUNT(*) FROM notifications
		WHERE user_id = $1 AND read = false`
)

// System queries.
const (
	queryGetSystemState = `
		SELECT
			(SELECT COUNT(*) FROM products)                              AS products_total,
			(SELECT COUNT(*) FROM providers)                             AS providers_total,
			(SELECT COUNT(*) FROM favorites)                             AS favorites_total,
			(SELECT COUNT(*) FROM snapshots)                             AS snapshots_total,
			(SELECT COUNT(*) FROM notifications)                         AS notifications_total,
			(SELECT COUNT(*) FROM notifications WHERE read = false)      AS notifications_unread`
)
