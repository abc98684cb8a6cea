// Package campaign implements email templates, campaigns, and the campaign
// send orchestrator.
//
// The send path is the one real piece of coordination in this system: a
// bounded concurrent fan-out over the resolved recipients, with per-recipient
// failure isolation, followed by a join and a single status update. One bad
// address never sinks the campaign.
package campaign
