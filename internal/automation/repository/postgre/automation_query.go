package postgre

const queryListActiveByPost = `
	SELECT
		a.id, a.name, a.instagram_account_id, a.post_id,
		a.trigger_type, a.keywords,
		a.message_type, a.dm_message_template, a.carousel_elements,
		a.comment_reply_enabled, a.comment_reply_template,
		a.is_active,
		ia.instagram_user_id, ia.access_token
	FROM automations a
	JOIN instagram_accounts ia ON ia.id = a.instagram_account_id
	WHERE a.post_id = $1 AND a.is_active = TRUE
	ORDER BY a.created_at ASC, a.id ASC
`
