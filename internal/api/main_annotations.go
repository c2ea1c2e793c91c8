// @title           replydraft API
// @version         1.0
// @description     Drafts customer-support replies from a scenario and a few order fields.
// @BasePath        /api/v1
package api
