// Package watch runs the organize pipeline automatically whenever new files
// appear in the target directory and settle.
//
// The watcher is a polling loop, not an inotify consumer: the pipeline is
// cheap, polling needs no platform-specific event plumbing, and the settle
// window already forces a delay between arrival and action. A flock-guarded
// lock file keeps the watcher single-instance.
package watch
