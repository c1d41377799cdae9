// Fsched reorganizes Fountain screenplay files by camera setup for
// efficient filming.
//
// It scans a screenplay for [[SETUP X: description]] markers, groups the
// covered content by setup letter into a shooting schedule, and can also
// emit a chronological screenplay annotated with setup headings and unique
// scene/setup marker tokens.
//
// Usage:
//
//	fsched schedule screenplay.fountain            # write SHOTLIST_screenplay.fountain
//	fsched schedule screenplay.fountain --stdout   # print the schedule
//	fsched annotate screenplay.fountain            # write schedule + annotated screenplay
//	fsched config init                             # create a default config file
//
// See https://github.com/kyleawayan/fountain-setup-scheduler for full documentation.
package main
